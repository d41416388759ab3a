package mcpserver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beanlog/cuppa/internal/advisor"
	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/internal/testutil"
	"github.com/beanlog/cuppa/pkg/models"
)

func newTestTools(t *testing.T) *tools {
	t.Helper()
	path := testutil.WriteCatalogCSV(t, []models.Record{
		testutil.NewRecord(testutil.WithName("Cerrado Dulce"), testutil.WithCountry("Brazil"), testutil.WithRating(88)),
		testutil.NewRecord(testutil.WithName("Huila Honey"), testutil.WithCountry("Colombia"), testutil.WithRating(90)),
	})
	store := catalog.NewStore(path, testutil.Logger())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	engine := advisor.NewEngine(store, palate.NewClassifier(palate.Default()), testutil.Logger(), 0)
	return &tools{engine: engine, logger: testutil.Logger()}
}

func toolText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Content[0] is %T, want *mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

func TestRecommendToolRendersGuide(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.recommend(context.Background(), &mcp.CallToolRequest{}, recommendInput{Preference: "고소한 맛"})
	if err != nil {
		t.Fatalf("recommend() error = %v", err)
	}

	text := toolText(t, res)
	for _, want := range []string{
		"### ☕ 고소한 맛 취향 맞춤 커피 가이드",
		"🇧🇷 브라질 (Brazil)",
		"🇨🇴 콜롬비아 (Colombia)",
		"**Cerrado Dulce**",
		"**Huila Honey**",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered guide missing %q:\n%s", want, text)
		}
	}
}

func TestRecommendToolMetaQuestion(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.recommend(context.Background(), &mcp.CallToolRequest{}, recommendInput{Preference: "추천 기준 알려줘"})
	if err != nil {
		t.Fatalf("recommend() error = %v", err)
	}
	if got := toolText(t, res); got != palate.CriteriaText {
		t.Errorf("meta question should return the criteria text, got:\n%s", got)
	}
}

func TestRecommendToolGuidance(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.recommend(context.Background(), &mcp.CallToolRequest{}, recommendInput{Preference: "맥주 추천해줘"})
	if err != nil {
		t.Fatalf("recommend() error = %v", err)
	}
	if got := toolText(t, res); !strings.Contains(got, "죄송합니다") {
		t.Errorf("unclassifiable input should return guidance, got:\n%s", got)
	}
}

func TestRecommendToolCatalogUnavailable(t *testing.T) {
	store := catalog.NewStore(filepath.Join(t.TempDir(), "absent.csv"), testutil.Logger())
	engine := advisor.NewEngine(store, palate.NewClassifier(palate.Default()), testutil.Logger(), 0)
	tl := &tools{engine: engine, logger: testutil.Logger()}

	res, _, err := tl.recommend(context.Background(), &mcp.CallToolRequest{}, recommendInput{Preference: "고소한 맛"})
	if err != nil {
		t.Fatalf("recommend() error = %v", err)
	}
	if got := toolText(t, res); got != "Error: 데이터 파일을 찾을 수 없습니다." {
		t.Errorf("unavailable catalog text = %q", got)
	}
}

func TestCriteriaTool(t *testing.T) {
	tl := newTestTools(t)

	res, _, err := tl.criteria(context.Background(), &mcp.CallToolRequest{}, criteriaInput{})
	if err != nil {
		t.Fatalf("criteria() error = %v", err)
	}
	if got := toolText(t, res); got != palate.CriteriaText {
		t.Errorf("criteria() text = %q, want the criteria text", got)
	}
}
