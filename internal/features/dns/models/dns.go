package models

// Country is a catalog entry. Codes are stored upper-case.
type Country struct {
	Code string `json:"code" example:"UK"`
	Name string `json:"name" example:"United Kingdom"`
}

type Catalog struct {
	Countries []Country `json:"countries"`
}

// CountryView is a catalog entry with live pool counts.
type CountryView struct {
	Code      string `json:"code" example:"UK"`
	Name      string `json:"name" example:"United Kingdom"`
	Total     int    `json:"total" example:"10"`
	Busy      int    `json:"busy" example:"4"`
	Available int    `json:"available" example:"6"`
}

type ListResponse struct {
	Countries []CountryView `json:"countries"`
}

type CountryInput struct {
	Code      string   `json:"code" example:"uk"`
	Name      string   `json:"name" example:"United Kingdom"`
	Endpoints []string `json:"endpoints"`
	Busy      []string `json:"busy"`
}

type ReplaceRequest struct {
	Countries []CountryInput `json:"countries"`
}

type AllocateRequest struct {
	Code string `json:"code" example:"UK"`
}

type AllocateResponse struct {
	OK       bool   `json:"ok"`
	Endpoint string `json:"endpoint" example:"185.51.200.2"`
}

type ReleaseRequest struct {
	Code     string `json:"code" example:"UK"`
	Endpoint string `json:"endpoint" example:"185.51.200.2"`
}
