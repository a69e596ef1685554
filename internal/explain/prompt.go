package explain

import (
	"fmt"
	"strings"

	"github.com/daylab/labmate/internal/catalog"
)

const systemPrompt = `You are a laboratory safety assistant for a Korean middle and high school science lab. You write short, accurate safety briefings for reagents that students and teachers handle. Always respond in Korean. Never invent hazard classifications that are not supported by the substance's known properties.`

func buildUserMessage(input Input) string {
	var b strings.Builder

	item := input.Item
	b.WriteString(fmt.Sprintf("물질: %s\n", item.DisplayName()))
	if s, ok := catalog.Str(item.NameEn); ok {
		b.WriteString(fmt.Sprintf("English name: %s\n", s))
	}
	if s, ok := catalog.Str(item.Formula); ok {
		b.WriteString(fmt.Sprintf("화학식: %s\n", s))
	}
	if s, ok := catalog.Str(item.CAS); ok {
		b.WriteString(fmt.Sprintf("CAS 번호: %s\n", s))
	}
	b.WriteString(fmt.Sprintf("관리 구분: %s\n", item.Hazard.Label()))

	if input.MissedQuestion != "" {
		b.WriteString("\n학생이 다음 퀴즈 문항을 틀렸습니다:\n")
		b.WriteString(input.MissedQuestion)
		b.WriteString("\n이 문항과 관련된 내용을 설명에 포함하세요.\n")
	}

	b.WriteString(`
Instructions:
1. Write a 2-3 sentence summary of what this substance is and its main risks.
2. List 2-4 specific hazards relevant to a school laboratory.
3. List 2-4 handling and storage rules a student can follow.
4. Give one first-aid step for the most likely exposure route.
5. Plain Korean text only. No markdown, no chemical hazard pictogram references.`)

	return b.String()
}
