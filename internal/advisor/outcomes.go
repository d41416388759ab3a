package advisor

import "github.com/beanlog/cuppa/pkg/models"

// User-facing messages, kept verbatim. The "Error: " prefix on the
// unavailable and timeout messages is part of the product copy.
const (
	msgGuidance = "죄송합니다. '고소한 맛', '과일 같은 산미', '꽃향기' 등으로 질문해 주세요.\n" +
		"(궁금하시다면 '추천 기준'이라고 물어봐 주세요.)"
	msgNoMatch     = "조건에 맞는 커피를 찾을 수 없습니다."
	msgUnavailable = "Error: 데이터 파일을 찾을 수 없습니다."
	msgTimeout     = "Error: 처리 시간이 초과되었습니다."
)

func infoOutcome(content string) *models.Outcome {
	return &models.Outcome{Type: models.OutcomeInfo, Content: content}
}

func guidanceOutcome() *models.Outcome {
	return &models.Outcome{
		Type:    models.OutcomeError,
		Code:    models.CodeUnclassified,
		Content: msgGuidance,
	}
}

func noMatchOutcome() *models.Outcome {
	return &models.Outcome{
		Type:    models.OutcomeError,
		Code:    models.CodeNoMatch,
		Content: msgNoMatch,
	}
}

func unavailableOutcome() *models.Outcome {
	return &models.Outcome{
		Type:    models.OutcomeError,
		Code:    models.CodeCatalogUnavailable,
		Content: msgUnavailable,
	}
}

// TimeoutOutcome is the outcome for an abandoned recommendation pass.
// Exported for transports that enforce their own deadline around Advise.
func TimeoutOutcome() *models.Outcome {
	return &models.Outcome{
		Type:    models.OutcomeError,
		Code:    models.CodeTimeout,
		Content: msgTimeout,
	}
}

func recommendationOutcome(rec *models.Recommendation) *models.Outcome {
	return &models.Outcome{Type: models.OutcomeRecommendation, Recommendation: rec}
}
