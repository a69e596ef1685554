package explain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "에탄올은 무색의 가연성 액체로, 증기가 쉽게 인화됩니다.",
		"hazards": ["인화성이 매우 높습니다.", "증기를 장시간 흡입하면 어지러움을 유발합니다."],
		"handling": ["화기 근처에서 사용하지 않습니다.", "사용 후 즉시 마개를 닫아 보관합니다."],
		"first_aid": "피부에 닿으면 흐르는 물로 씻어냅니다."
	}`)
}

func testItem() catalog.Item {
	name := "에탄올"
	formula := "C2H5OH"
	return catalog.Item{NameKo: &name, Formula: &formula}
}

func waitConsume(t *testing.T, svc *Service) (*Explanation, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if exp, ok := svc.Consume(); ok {
			return exp, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Item: testItem()})

	exp, ok := waitConsume(t, svc)
	if !ok || exp == nil {
		t.Fatal("expected explanation to be generated")
	}
	if exp.ItemName != "에탄올" {
		t.Errorf("ItemName = %q, want 에탄올", exp.ItemName)
	}
	if exp.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(exp.Hazards) != 2 || len(exp.Handling) != 2 {
		t.Errorf("hazards/handling = %d/%d entries, want 2/2", len(exp.Hazards), len(exp.Handling))
	}
	if exp.FirstAid == "" {
		t.Error("expected non-empty first aid")
	}
}

func TestService_ConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Item: testItem()})
	if _, ok := waitConsume(t, svc); !ok {
		t.Fatal("expected first consume to succeed")
	}

	if _, ok := svc.Consume(); ok {
		t.Error("expected second Consume to return false")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Item: testItem()})
	time.Sleep(100 * time.Millisecond)

	exp, ok := svc.Consume()
	if ok && exp != nil {
		t.Error("expected no explanation on provider error")
	}
}

func TestService_MissedQuestionInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	question := "에탄올의 화학식은 무엇인가요?"
	_, err := svc.Explain(t.Context(), Input{Item: testItem(), MissedQuestion: question})
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "safety-explanation" {
		t.Error("expected schema name 'safety-explanation'")
	}
	if !strings.Contains(req.Messages[0].Content, question) {
		t.Error("expected missed question to appear in prompt")
	}
}
