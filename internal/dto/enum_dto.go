package dto

// EnumItem is the uniform shape of every lookup table entry.
type EnumItem struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

type DistrictItem struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Value        string `json:"value"`
	ProvinceCode string `json:"provinceCode"`
}
