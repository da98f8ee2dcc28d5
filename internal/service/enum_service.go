package service

import (
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/model"
)

// EnumService serves the static reference tables. Item ids are 1-based
// positions in each table.
type EnumService interface {
	PaymentMethods() []dto.EnumItem
	Genders() []dto.EnumItem
	Provinces() []dto.EnumItem
	DistrictsByProvince(provinceCode string) []dto.DistrictItem
	MaritalStatuses() []dto.EnumItem
	Roles() []dto.EnumItem
	Nationalities() []dto.EnumItem
}

type option struct{ code, value string }

type enumService struct{}

func NewEnumService() EnumService { return enumService{} }

func (enumService) PaymentMethods() []dto.EnumItem  { return toItems(paymentMethods) }
func (enumService) Genders() []dto.EnumItem         { return toItems(genders) }
func (enumService) Provinces() []dto.EnumItem       { return toItems(provinces) }
func (enumService) MaritalStatuses() []dto.EnumItem { return toItems(maritalStatuses) }
func (enumService) Roles() []dto.EnumItem           { return toItems(roles) }
func (enumService) Nationalities() []dto.EnumItem   { return toItems(nationalities) }

// DistrictsByProvince returns an empty (non-nil) list for unknown provinces.
func (enumService) DistrictsByProvince(provinceCode string) []dto.DistrictItem {
	districts := districtsByProvince[provinceCode]
	items := make([]dto.DistrictItem, len(districts))
	for i, d := range districts {
		items[i] = dto.DistrictItem{ID: i + 1, Code: d.code, Value: d.value, ProvinceCode: provinceCode}
	}
	return items
}

func toItems(opts []option) []dto.EnumItem {
	items := make([]dto.EnumItem, len(opts))
	for i, o := range opts {
		items[i] = dto.EnumItem{ID: i + 1, Code: o.code, Value: o.value}
	}
	return items
}

var paymentMethods = []option{
	{string(model.PaymentMPesa), string(model.PaymentMPesa)},
	{string(model.PaymentEMola), string(model.PaymentEMola)},
	{string(model.PaymentMKesh), string(model.PaymentMKesh)},
	{string(model.PaymentMillenniumBim), string(model.PaymentMillenniumBim)},
	{string(model.PaymentBCI), string(model.PaymentBCI)},
}

var genders = []option{
	{string(model.GenderMale), "Masculino"},
	{string(model.GenderFemale), "Feminino"},
	{string(model.GenderOther), "Outro"},
}

var maritalStatuses = []option{
	{string(model.MaritalSingle), "Solteiro"},
	{string(model.MaritalMarried), "Casado"},
	{string(model.MaritalDivorced), "Divorciado"},
	{string(model.MaritalWidowed), "Viúvo"},
}

var roles = []option{
	{string(model.RoleCliente), "Cliente"},
	{string(model.RoleFuncionario), "Funcionário"},
	{string(model.RoleAdministrador), "Administrador"},
}

var nationalities = []option{
	{"Mozambique", "Moçambique"},
	{"Portugal", "Portugal"},
	{"South Africa", "África do Sul"},
	{"Brazil", "Brasil"},
	{"Angola", "Angola"},
	{"Other", "Outra"},
}

var provinces = []option{
	{"Maputo", "Maputo"},
	{"Gaza", "Gaza"},
	{"Inhambane", "Inhambane"},
	{"Sofala", "Sofala"},
	{"Manica", "Manica"},
	{"Tete", "Tete"},
	{"Zambezia", "Zambezia"},
	{"Nampula", "Nampula"},
	{"Cabo Delgado", "Cabo Delgado"},
	{"Niassa", "Niassa"},
}

var districtsByProvince = map[string][]option{
	"Maputo": {
		{"Matola", "Matola"},
		{"Maputo", "Maputo"},
		{"Boane", "Boane"},
		{"Marracuene", "Marracuene"},
		{"Manhiça", "Manhiça"},
		{"Namaacha", "Namaacha"},
		{"Moamba", "Moamba"},
		{"Magude", "Magude"},
		{"Bilene", "Bilene"},
		{"Chibuto", "Chibuto"},
		{"Chokwé", "Chokwé"},
		{"Guijá", "Guijá"},
		{"Mabalane", "Mabalane"},
		{"Massingir", "Massingir"},
		{"Xai-Xai", "Xai-Xai"},
	},
	"Gaza": {
		{"Xai-Xai", "Xai-Xai"},
		{"Chokwé", "Chokwé"},
		{"Chibuto", "Chibuto"},
		{"Guijá", "Guijá"},
		{"Mabalane", "Mabalane"},
		{"Massingir", "Massingir"},
		{"Bilene", "Bilene"},
		{"Macia", "Macía"},
		{"Chicualacuala", "Chicualacuala"},
		{"Mabote", "Mabote"},
		{"Limpopo", "Limpopo"},
	},
	"Inhambane": {
		{"Inhambane", "Inhambane"},
		{"Maxixe", "Maxixe"},
		{"Funhalouro", "Funhalouro"},
		{"Govuro", "Govuro"},
		{"Mabote", "Mabote"},
		{"Morrumbene", "Morrumbene"},
		{"Panda", "Panda"},
		{"Vilanculos", "Vilanculos"},
		{"Zavala", "Zavala"},
		{"Massinga", "Massinga"},
		{"Homoine", "Homoine"},
		{"Jangamo", "Jangamo"},
		{"Mabilingane", "Mabilingane"},
	},
	"Sofala": {
		{"Beira", "Beira"},
		{"Dondo", "Dondo"},
		{"Gorongosa", "Gorongosa"},
		{"Muanza", "Muanza"},
		{"Nhamatanda", "Nhamatanda"},
		{"Chemba", "Chemba"},
		{"Caia", "Caia"},
		{"Marromeu", "Marromeu"},
		{"Chire", "Chire"},
	},
	"Manica": {
		{"Chimoio", "Chimoio"},
		{"Manica", "Manica"},
		{"Barue", "Barué"},
		{"Gondola", "Gondola"},
		{"Macate", "Macate"},
		{"Sussundenga", "Sussundenga"},
		{"Tambarara", "Tambarara"},
		{"Vanduzi", "Vanduzi"},
		{"Machaze", "Machaze"},
	},
	"Tete": {
		{"Tete", "Tete"},
		{"Moatize", "Moatize"},
		{"Changara", "Changara"},
		{"Chiuta", "Chiuta"},
		{"Marávia", "Marávia"},
		{"Cahora-Bassa", "Cahora-Bassa"},
		{"Songo", "Songo"},
		{"Magoe", "Magoé"},
		{"Doa", "Doa"},
		{"Luanga", "Luanga"},
	},
	"Zambezia": {
		{"Quelimane", "Quelimane"},
		{"Mocuba", "Mocuba"},
		{"Alto Molocue", "Alto Molócuè"},
		{"Chinde", "Chinde"},
		{"Gurué", "Gurué"},
		{"Inhassunge", "Inhassunge"},
		{"Lugela", "Lugela"},
		{"Maganja da Costa", "Maganja da Costa"},
		{"Milange", "Milange"},
		{"Mopeia", "Mopeia"},
		{"Namarrai", "Namarrai"},
		{"Nicoadala", "Nicoadala"},
		{"Pebane", "Pebane"},
	},
	"Nampula": {
		{"Nampula", "Nampula"},
		{"Angoche", "Angoche"},
		{"Eráti", "Eráti"},
		{"Lalau", "Lalau"},
		{"Larde", "Larde"},
		{"Liúpo", "Liúpo"},
		{"Malema", "Malema"},
		{"Mecubúri", "Mecubúri"},
		{"Mogincual", "Mogincual"},
		{"Mogovolas", "Mogovolas"},
		{"Monapo", "Monapo"},
		{"Mossuril", "Mossuril"},
		{"Muecate", "Muecate"},
		{"Murrupula", "Murrupula"},
		{"Nacarôa", "Nacarôa"},
		{"Ribáuè", "Ribáuè"},
	},
	"Cabo Delgado": {
		{"Pemba", "Pemba"},
		{"Chiúre", "Chiúre"},
		{"Ancuabe", "Ancuabe"},
		{"Balama", "Balama"},
		{"Mecufi", "Mecufi"},
		{"Metarica", "Metarica"},
		{"Muamba", "Muamba"},
		{"Mueda", "Mueda"},
		{"Muidumbe", "Muidumbe"},
		{"Namuno", "Namuno"},
		{"Nangade", "Nangade"},
		{"Palma", "Palma"},
		{"Quissanga", "Quissanga"},
		{"Macomia", "Macomia"},
		{"Meluco", "Meluco"},
	},
	"Niassa": {
		{"Lichinga", "Lichinga"},
		{"Cuamba", "Cuamba"},
		{"Lago", "Lago"},
		{"Chimbonila", "Chimbonila"},
		{"Majune", "Majune"},
		{"Mandimba", "Mandimba"},
		{"Marrupa", "Marrupa"},
		{"Maúa", "Maúa"},
		{"Mavago", "Mavago"},
		{"Mecanhelas", "Mecanhelas"},
		{"Mecula", "Mecula"},
		{"Muembe", "Muembe"},
		{"N'gauma", "N'gauma"},
		{"Nipepe", "Nipepe"},
		{"Sanga", "Sanga"},
	},
}
