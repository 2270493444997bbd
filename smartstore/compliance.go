package smartstore

import (
	"strconv"
	"strings"
)

// ComplianceFlags is advisory, derived per request and never persisted.
// A true flag means the payload must carry the corresponding certification
// exclusion marker; the engine holds no real certificate data.
type ComplianceFlags struct {
	KCExempt      bool
	ChildExempt   bool
	IsMarineGoods bool
}

type idRange struct {
	lo, hi int
}

func (r idRange) contains(id int) bool {
	return id >= r.lo && id <= r.hi
}

// categoryRule is a declarative compliance rule: keyword sets and id ranges
// mapped to a flag. When roots is non-empty, a path must contain one root
// keyword and one term keyword; otherwise any term keyword suffices.
type categoryRule struct {
	roots  []string
	terms  []string
	ranges []idRange
}

func (r categoryRule) matchPath(path string) bool {
	if path == "" {
		return false
	}
	if len(r.roots) > 0 && !containsAny(path, r.roots) {
		return false
	}
	return containsAny(path, r.terms)
}

func (r categoryRule) matchID(leafID string) bool {
	id, err := strconv.Atoi(leafID)
	if err != nil {
		return false
	}
	for _, rng := range r.ranges {
		if rng.contains(id) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// KC electrical appliance certification applies to electronics/appliance
// categories, recognized by keywords or by the digital/appliance id blocks.
var kcRule = categoryRule{
	roots: []string{"디지털", "가전", "전자"},
	terms: []string{
		"모니터", "노트북", "PC", "TV", "텔레비",
		"스마트폰", "휴대폰", "태블릿", "카메라", "전기", "전자",
	},
	ranges: []idRange{
		{50000204, 50000599},
		{50002700, 50003099},
	},
}

// Children's product certification applies to maternity/childcare and toy
// categories, recognized by keywords or by their id blocks.
var childRule = categoryRule{
	terms: []string{
		"출산", "육아", "유아", "아동", "키즈",
		"완구", "장난감", "인형",
	},
	ranges: []idRange{
		{50000005, 50000099},
		{50007100, 50007399},
		{50011000, 50011199},
	},
}

// Marine goods are recognized by path keywords only. A purely numeric
// category token cannot be classified and is treated as non-marine so that
// marine-only origin fields are never emitted by accident.
var marineRule = categoryRule{
	terms: []string{
		"수산", "해산물", "생선", "건어물", "젓갈",
		"오징어", "새우", "멸치", "김/미역",
	},
}

// ComplianceAdvisor derives certification-exemption flags from the category.
type ComplianceAdvisor struct{}

func NewComplianceAdvisor() *ComplianceAdvisor {
	return &ComplianceAdvisor{}
}

// Evaluate computes flags for a category. categoryPath is the textual path
// the caller supplied, or empty when only a numeric id was given. leafID is
// the resolved leaf category id.
func (a *ComplianceAdvisor) Evaluate(categoryPath, leafID string) ComplianceFlags {
	pathText := categoryPath
	if _, err := strconv.Atoi(strings.TrimSpace(categoryPath)); err == nil {
		// Numeric token, not a textual path.
		pathText = ""
	}

	return ComplianceFlags{
		KCExempt:      kcRule.matchPath(pathText) || kcRule.matchID(leafID),
		ChildExempt:   childRule.matchPath(pathText) || childRule.matchID(leafID),
		IsMarineGoods: pathText != "" && marineRule.matchPath(pathText),
	}
}
