package entities

// Publicacion is an academic publication produced by the office's programs.
type Publicacion struct {
	PublicacionID uint   `json:"publicacion_id" gorm:"primaryKey;autoIncrement"`
	Titulo        string `json:"titulo" gorm:"column:titulo;not null"`
	Autores       string `json:"autores" gorm:"column:autores;not null"`
	Area          string `json:"area" gorm:"column:area;not null"`
	Fecha         Fecha  `json:"fecha" gorm:"column:fecha;not null"`
	Enlace        string `json:"enlace" gorm:"column:enlace;not null"`
	Tipo          string `json:"tipo" gorm:"column:tipo;not null"`
}

func (Publicacion) TableName() string { return "publicaciones" }
