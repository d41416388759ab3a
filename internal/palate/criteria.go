package palate

// CriteriaText is the static explanation of the classification rules,
// returned for meta-questions and by the criteria endpoints.
const CriteriaText = "### 🔍 커피 추천 로직 및 분류 기준\n\n" +
	"**1. 산미 (Acidic)**\n" +
	"- **과일 계열 (Fruity)**: 산미 점수 9점 이상 + (Berry, Citrus, Fruit 키워드)\n" +
	"- **꽃향 계열 (Floral)**: 산미 점수 9점 이상 + (Floral, Jasmine, Rose 키워드)\n" +
	"- 🚫 제외: 흙내(Earthy), 담배(Tobacco) 등 텁텁한 표현\n" +
	"- 🏳️ 추천 국가: 에티오피아, 파나마, 케냐\n\n" +
	"**2. 고소한 맛 (Nutty)**\n" +
	"- **조건**: 산미 점수 8점 이하\n" +
	"- 🚫 제외: 시큼함(Tart), 와인(Wine), 톡 쏘는 산미(Bright/Citrus)\n" +
	"- 🏳️ 추천 국가: 브라질, 콜롬비아, 과테말라, 인도네시아\n\n" +
	"※ 위 조건을 만족하는 그룹 내에서 **평점(Rating)**이 높은 순서대로 추천합니다."
