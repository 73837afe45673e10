package domain

import "time"

// EntityType identifica o nível do objeto de anúncio sob análise
type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
)

// Platform identifica a plataforma de origem dos dados de anúncios
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformShopify  Platform = "shopify"
)

// AdEntity representa o objeto de anúncio analisado (campanha, conjunto ou anúncio)
type AdEntity struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     EntityType `json:"type"`
	Platform Platform   `json:"platform"`
	Status   string     `json:"status"`
}

// AnalysisFilters define a janela de datas usada em uma análise
type AnalysisFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
