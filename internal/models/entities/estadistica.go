package entities

// Estadistica is a free-form institutional indicator.
type Estadistica struct {
	EstadisticaID uint   `json:"estadistica_id" gorm:"primaryKey;autoIncrement"`
	Categoria     string `json:"categoria" gorm:"column:categoria;not null"`
	Value         string `json:"value" gorm:"column:value;not null"`
	Descripcion   string `json:"descripcion" gorm:"column:descripcion;not null"`
}

func (Estadistica) TableName() string { return "estadistica_upc" }
