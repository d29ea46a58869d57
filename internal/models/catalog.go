package models

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Skill struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

type EducationCentre struct {
	ID          int    `json:"id"`
	CategoryID  int    `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rate        int    `json:"rate"`       // 1..5
	Experience  int    `json:"experience"` // лет на рынке
}

type Branch struct {
	ID                int    `json:"id"`
	EducationCentreID int    `json:"education_centre_id"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	Phone             string `json:"phone,omitempty"`
}

type Course struct {
	ID                int    `json:"id"`
	CategoryID        int    `json:"category_id"`
	EducationCentreID int    `json:"education_centre_id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	PriceMonth        int    `json:"price_month"`
	EducationType     string `json:"education_type"` // offline / online / hybrid
	DurationMonths    int    `json:"duration_months,omitempty"`
}
