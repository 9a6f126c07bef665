package entities

// SalidaPractica is a student field trip.
type SalidaPractica struct {
	SalidaPracticaID    uint   `json:"id_salida_practica" gorm:"primaryKey;autoIncrement"`
	FechaSalida         Fecha  `json:"fecha_salida" gorm:"column:fecha_salida;not null"`
	LugarDestino        string `json:"lugar_destino" gorm:"column:lugar_destino;not null"`
	Responsable         string `json:"responsable" gorm:"column:responsable;not null"`
	CantidadEstudiantes int64  `json:"cantidad_estudiantes" gorm:"column:cantidad_estudiantes;not null"`
	HoraSalida          Hora   `json:"hora_salida" gorm:"column:hora_salida;not null"`
	HoraRegreso         Hora   `json:"hora_regreso" gorm:"column:hora_regreso;not null"`
	Observaciones       string `json:"observaciones,omitempty" gorm:"column:observaciones"`
}

func (SalidaPractica) TableName() string { return "salidas_practicas" }
