package entities

const (
	EstatusConvenioActivo    = "active"
	EstatusConvenioExpirado  = "expired"
	EstatusConvenioPendiente = "pending"
)

// EstatusConvenioValores lists the accepted agreement statuses.
var EstatusConvenioValores = []string{
	EstatusConvenioActivo,
	EstatusConvenioExpirado,
	EstatusConvenioPendiente,
}

// Convenio is an agreement signed with a partner company. CompaniaID
// references empresas; a batch citing a company that does not exist fails
// the whole insert transaction.
type Convenio struct {
	ConvenioID       uint     `json:"convenio_id" gorm:"primaryKey;autoIncrement"`
	CompaniaID       int64    `json:"compania_id" gorm:"column:compania_id;not null"`
	Empresa          *Empresa `json:"-" gorm:"foreignKey:CompaniaID;references:EmpresaID;constraint:OnDelete:RESTRICT"`
	TituloCompania   string   `json:"titulo_compania" gorm:"column:titulo_compania;not null"`
	TipoDeConvenio   string   `json:"tipo_de_convenio" gorm:"column:tipo_de_convenio;not null"`
	Descripcion      string   `json:"descripcion" gorm:"column:descripcion;not null"`
	Beneficios       string   `json:"beneficios" gorm:"column:beneficios;not null"`
	FechaFirma       Fecha    `json:"fecha_firma" gorm:"column:fecha_firma;not null"`
	FechaVencimiento Fecha    `json:"fecha_vencimiento" gorm:"column:fecha_vencimiento;not null"`
	Estatus          string   `json:"estatus" gorm:"column:estatus;not null;default:pending"`
}

func (Convenio) TableName() string { return "convenios" }
