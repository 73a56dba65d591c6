package entity

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&Department{},
		&Doctor{},
		&Patient{},
		&Appointment{},
		&User{},
	}
}
