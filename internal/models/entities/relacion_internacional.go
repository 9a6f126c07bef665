package entities

const (
	TipoRelacionMovilidad = "mobility"
	TipoRelacionConvenio  = "agreement"
	TipoRelacionProyecto  = "project"
	TipoRelacionRed       = "network"
)

// TipoRelacionValores lists the accepted relation kinds.
var TipoRelacionValores = []string{
	TipoRelacionMovilidad,
	TipoRelacionConvenio,
	TipoRelacionProyecto,
	TipoRelacionRed,
}

const (
	EstadoRelacionActivo    = "active"
	EstadoRelacionExpirado  = "expired"
	EstadoRelacionPendiente = "pending"
)

// EstadoRelacionValores lists the accepted relation statuses.
var EstadoRelacionValores = []string{
	EstadoRelacionActivo,
	EstadoRelacionExpirado,
	EstadoRelacionPendiente,
}

// RelacionInternacional is a partnership with a foreign institution.
type RelacionInternacional struct {
	RelacionID        uint   `json:"relacion_id" gorm:"primaryKey;autoIncrement"`
	Nombre            string `json:"nombre" gorm:"column:nombre;not null"`
	Pais              string `json:"pais" gorm:"column:pais;not null"`
	Institucion       string `json:"institucion" gorm:"column:institucion;not null"`
	Tipo              string `json:"tipo" gorm:"column:tipo;not null"`
	FechaInicio       Fecha  `json:"fecha_inicio" gorm:"column:fecha_inicio;not null"`
	FechaFinalizacion Fecha  `json:"fecha_finalizacion" gorm:"column:fecha_finalizacion;not null"`
	Descripcion       string `json:"descripcion" gorm:"column:descripcion;not null"`
	Participantes     string `json:"participantes" gorm:"column:participantes;not null"`
	Resultados        string `json:"resultados" gorm:"column:resultados;not null"`
	Estado            string `json:"estado" gorm:"column:estado;not null;default:pending"`
}

func (RelacionInternacional) TableName() string { return "relaciones_internacionales" }
