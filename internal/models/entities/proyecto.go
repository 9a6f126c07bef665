package entities

// Proyecto is an outreach project.
type Proyecto struct {
	ProyectoID   uint   `json:"proyecto_id" gorm:"primaryKey;autoIncrement"`
	Titulo       string `json:"titulo" gorm:"column:titulo;not null"`
	AreaTematica string `json:"area_tematica" gorm:"column:area_tematica;not null"`
	FechaInicio  Fecha  `json:"fecha_inicio" gorm:"column:fecha_inicio;not null"`
}

func (Proyecto) TableName() string { return "proyectos" }
