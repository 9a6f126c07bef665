package entities

// Evento is an outreach event with attendance figures.
type Evento struct {
	EventoID    uint   `json:"evento_id" gorm:"primaryKey;autoIncrement"`
	Tipo        string `json:"tipo" gorm:"column:tipo;not null"`
	Fecha       Fecha  `json:"fecha" gorm:"column:fecha;not null"`
	Asistentes  int64  `json:"asistentes" gorm:"column:asistentes;not null"`
	Multimedia  string `json:"multimedia" gorm:"column:multimedia;not null"`
	Descripcion string `json:"descripcion" gorm:"column:descripcion;not null"`
}

func (Evento) TableName() string { return "eventos" }
