package entities

const (
	EstadoImpactoActivo     = "activo"
	EstadoImpactoFinalizado = "finalizado"
	EstadoImpactoPendiente  = "pendiente"
)

// EstadoImpactoValores lists the accepted social impact statuses.
var EstadoImpactoValores = []string{
	EstadoImpactoActivo,
	EstadoImpactoFinalizado,
	EstadoImpactoPendiente,
}

// ImpactoSocial is a social impact program record.
type ImpactoSocial struct {
	ImpactoID     uint   `json:"impacto_id" gorm:"primaryKey;autoIncrement"`
	Titulo        string `json:"titulo" gorm:"column:titulo;not null"`
	Beneficiarios string `json:"beneficiarios" gorm:"column:beneficiarios;not null"`
	Ubicacion     string `json:"ubicacion" gorm:"column:ubicacion;not null"`
	FechaInicio   Fecha  `json:"fecha_inicio" gorm:"column:fecha_inicio;not null"`
	FechaFinal    Fecha  `json:"fecha_final" gorm:"column:fecha_final;not null"`
	Descripcion   string `json:"descripcion" gorm:"column:descripcion;not null"`
	Objetivos     string `json:"objetivos" gorm:"column:objetivos;not null"`
	Resultados    string `json:"resultados" gorm:"column:resultados;not null"`
	Participantes string `json:"participantes" gorm:"column:participantes;not null"`
	Estado        string `json:"estado" gorm:"column:estado;not null;default:pendiente"`
}

func (ImpactoSocial) TableName() string { return "impacto_social" }
