package usecase

import "strings"

// koreanCompanyNames maps curated Korean company names to the English names
// the upstream provider understands.
var koreanCompanyNames = map[string]string{
	// Tech
	"애플":      "Apple",
	"구글":      "Google",
	"알파벳":     "Alphabet",
	"마이크로소프트": "Microsoft",
	"아마존":     "Amazon",
	"테슬라":     "Tesla",
	"메타":      "Meta",
	"페이스북":    "Facebook",
	"넷플릭스":    "Netflix",
	"엔비디아":    "NVIDIA",
	"인텔":      "Intel",
	"어도비":     "Adobe",
	"페이팔":     "PayPal",
	"세일즈포스":   "Salesforce",

	// Finance
	"제이피모건":    "JPMorgan",
	"뱅크오브아메리카": "Bank of America",
	"웰스파고":     "Wells Fargo",
	"골드만삭스":    "Goldman Sachs",
	"모건스탠리":    "Morgan Stanley",

	// Consumer and industrial
	"존슨앤존슨":   "Johnson & Johnson",
	"프록터앤갬블":  "Procter & Gamble",
	"코카콜라":    "Coca-Cola",
	"펩시":      "Pepsi",
	"월마트":     "Walmart",
	"홈디포":     "Home Depot",
	"월트디즈니":   "Walt Disney",
	"버라이즌":    "Verizon",
	"버킹엄":     "Berkshire Hathaway",
	"유나이티드헬스": "UnitedHealth",
	"비자":      "Visa",
	"마스터카드":   "Mastercard",
	"맥도날드":    "McDonald's",
	"스타벅스":    "Starbucks",
	"나이키":     "Nike",
	"팔란티어":    "Palantir",
	"팔란티어테크":  "Palantir Technologies",
}

// TranslateKoreanToEnglish maps a Korean company name query to its English
// equivalent. Exact matches win; otherwise a substring match in either
// direction is accepted. Unmatched queries are returned unchanged.
func TranslateKoreanToEnglish(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return query
	}

	if english, ok := koreanCompanyNames[q]; ok {
		return english
	}

	for korean, english := range koreanCompanyNames {
		if strings.Contains(q, korean) || strings.Contains(korean, q) {
			return english
		}
	}

	return query
}
