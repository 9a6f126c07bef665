package entities

// EstadoEmpleabilidad is the employment status reported by an alumnus.
type EstadoEmpleabilidad = string

const (
	EmpleabilidadEmpleado    EstadoEmpleabilidad = "Empleado"
	EmpleabilidadDesempleado EstadoEmpleabilidad = "Desempleado"
	EmpleabilidadEmprendedor EstadoEmpleabilidad = "Emprendedor"
)

// EmpleabilidadValores lists the accepted employment statuses.
var EmpleabilidadValores = []string{
	EmpleabilidadEmpleado,
	EmpleabilidadDesempleado,
	EmpleabilidadEmprendedor,
}

// Egresado is a graduate tracked for employability follow-up.
type Egresado struct {
	EgresadoID     uint   `json:"egresado_id" gorm:"primaryKey;autoIncrement"`
	NombreCompleto string `json:"nombre_completo" gorm:"column:nombre_completo;not null"`
	AnioGraduacion Fecha  `json:"año_graduacion" gorm:"column:anio_graduacion;not null"`
	Empleabilidad  string `json:"empleabilidad" gorm:"column:empleabilidad;not null"`
	Email          string `json:"email" gorm:"column:email;not null"`
}

func (Egresado) TableName() string { return "egresados" }
