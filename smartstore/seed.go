package smartstore

// seedCategories is a minimal built-in category table used when neither the
// live tree nor a persisted snapshot is available. It keeps the resolver
// partially functional for the most commonly listed categories.
var seedCategories = []CategoryEntry{
	{Path: "패션의류 > 여성의류 > 티셔츠", ID: "50000830"},
	{Path: "패션의류 > 남성의류 > 티셔츠", ID: "50000805"},
	{Path: "패션잡화 > 여성신발 > 운동화", ID: "50001206"},
	{Path: "화장품/미용 > 스킨케어 > 크림", ID: "50002446"},
	{Path: "디지털/가전 > 모니터", ID: "50000204"},
	{Path: "디지털/가전 > 노트북", ID: "50000205"},
	{Path: "디지털/가전 > 휴대폰 > 스마트폰", ID: "50000208"},
	{Path: "가구/인테리어 > 거실가구 > 소파", ID: "50001534"},
	{Path: "출산/육아 > 완구 > 인형", ID: "50007106"},
	{Path: "식품 > 과자/베이커리 > 과자", ID: "50006843"},
	{Path: "식품 > 수산물 > 오징어", ID: "50007021"},
	{Path: "생활/건강 > 주방용품 > 프라이팬", ID: "50004418"},
	{Path: "스포츠/레저 > 캠핑 > 텐트", ID: "50003685"},
	{Path: "반려동물 > 강아지 사료", ID: "50008721"},
}
