package entities

// Empresa is a partner company tracked by the outreach office.
type Empresa struct {
	EmpresaID     uint   `json:"empresa_id" gorm:"primaryKey;autoIncrement"`
	NombreEmpresa string `json:"nombre_empresa" gorm:"column:nombre_empresa;not null"`
	NIT           string `json:"nit" gorm:"column:nit;not null"`
	Sector        string `json:"sector" gorm:"column:sector;not null"`
	FechaConvenio Fecha  `json:"fecha_convenio" gorm:"column:fecha_convenio;not null"`
}

func (Empresa) TableName() string { return "empresas" }
