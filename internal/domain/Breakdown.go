package domain

import (
	"fmt"
	"strings"
	"time"
)

// Dimension identifica uma dimensão de breakdown de performance
type Dimension string

const (
	DimensionDemographic Dimension = "demographic"
	DimensionPlacement   Dimension = "placement"
	DimensionGeographic  Dimension = "geographic"
	DimensionTemporal    Dimension = "temporal"
)

// AllDimensions na ordem fixa usada pelo orquestrador e pelo merge de resultados
var AllDimensions = []Dimension{
	DimensionDemographic,
	DimensionPlacement,
	DimensionGeographic,
	DimensionTemporal,
}

// BreakdownRow representa um fato de performance por (entidade, segmento, data)
// dentro da janela consultada. Apenas os campos de chave da dimensão da linha
// estão preenchidos.
type BreakdownRow struct {
	EntityID  string    `json:"entity_id"`
	Dimension Dimension `json:"dimension"`
	Date      time.Time `json:"date"`

	// Chave demográfica
	AgeRange string `json:"age_range,omitempty"`
	Gender   string `json:"gender,omitempty"`

	// Chave de posicionamento
	PlacementType     string `json:"placement_type,omitempty"`
	DeviceType        string `json:"device_type,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`

	// Chave geográfica
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`

	// Chave temporal
	DayOfWeek int `json:"day_of_week,omitempty"`
	HourOfDay int `json:"hour_of_day,omitempty"`

	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// SegmentKey monta a chave composta do segmento da linha. A ordem dos campos é
// estável por dimensão para que o agrupamento seja determinístico.
func (r BreakdownRow) SegmentKey() string {
	switch r.Dimension {
	case DimensionDemographic:
		return strings.Join([]string{r.AgeRange, r.Gender}, "|")
	case DimensionPlacement:
		return strings.Join([]string{r.PlacementType, r.DeviceType, r.PublisherPlatform}, "|")
	case DimensionGeographic:
		return strings.Join([]string{r.Country, r.Region, r.City}, "|")
	case DimensionTemporal:
		return fmt.Sprintf("%d|%d", r.DayOfWeek, r.HourOfDay)
	}
	return ""
}

// SegmentLabel monta a descrição legível do segmento, usada nas narrativas
func (r BreakdownRow) SegmentLabel() string {
	switch r.Dimension {
	case DimensionDemographic:
		return fmt.Sprintf("%s %s", r.Gender, r.AgeRange)
	case DimensionPlacement:
		return fmt.Sprintf("%s em %s (%s)", r.PlacementType, r.PublisherPlatform, r.DeviceType)
	case DimensionGeographic:
		if r.City != "" {
			return fmt.Sprintf("%s, %s - %s", r.City, r.Region, r.Country)
		}
		return fmt.Sprintf("%s - %s", r.Region, r.Country)
	case DimensionTemporal:
		return fmt.Sprintf("%s às %02dh", WeekdayName(r.DayOfWeek), r.HourOfDay)
	}
	return r.SegmentKey()
}

var weekdayNames = []string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

// WeekdayName converte o dia da semana (0=domingo) para o nome em português
func WeekdayName(day int) string {
	if day < 0 || day >= len(weekdayNames) {
		return fmt.Sprintf("dia %d", day)
	}
	return weekdayNames[day]
}
