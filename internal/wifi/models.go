package wifi

import "github.com/google/uuid"

// WifiPoint is one public access point from the CDMX open-data export.
// SourceID is the dataset's own key and repeats across reinstallation
// records, so the generated UUID is the only true primary key.
type WifiPoint struct {
	UUID         uuid.UUID `json:"surrogate_id" gorm:"type:uuid;primaryKey;column:uuid"`
	SourceID     string    `json:"identifier" gorm:"column:id;index"`
	Program      string    `json:"program" gorm:"column:programa;not null"`
	InstallDate  *string   `json:"install_date" gorm:"column:fecha_instalacion"`
	Latitude     *float64  `json:"latitude" gorm:"column:latitud"`
	Longitude    *float64  `json:"longitude" gorm:"column:longitud"`
	Neighborhood *string   `json:"neighborhood" gorm:"column:colonia"`
	Borough      *string   `json:"borough" gorm:"column:alcaldia"`

	// NeighborhoodKey is a lowercased, diacritic-folded copy of Neighborhood
	// so substring search matches accented names. Derived at validation,
	// never exposed.
	NeighborhoodKey string `json:"-" gorm:"column:colonia_search;index"`
}

func (WifiPoint) TableName() string { return "wifi_points" }

// ImportControl is the singleton row recording whether the one-shot bulk
// import has completed. ID is always true; the flag survives restarts
// because it lives in the store, not in memory.
type ImportControl struct {
	ID       bool `gorm:"primaryKey;column:id"`
	Imported bool `gorm:"column:imported"`
}

func (ImportControl) TableName() string { return "import_control" }
