package models

type App struct {
	Name string   `json:"name" example:"V2Box"`
	Icon string   `json:"icon,omitempty" example:"/assets/icons/v2box.png"`
	Link string   `json:"link,omitempty" example:"https://apps.apple.com/app/id6446814690"`
	OS   []string `json:"os,omitempty" example:"ios,macos"`
}

type Catalog struct {
	Apps []App `json:"apps"`
}
