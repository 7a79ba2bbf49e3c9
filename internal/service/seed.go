package service

import "github.com/pulkit-sachdeva-dev/quantumTimes/models"

// defaultAccounts returns the fixed demo account table the system is seeded
// with on first run and after a data reset. Seeded accounts carry no
// RegisteredAt timestamp; only self-registered accounts do.
func defaultAccounts() models.AccountTable {
	return models.AccountTable{
		"student@chitkara.edu.in": {
			Username: "student",
			Password: "Student@123",
			Name:     "Student User",
			Role:     models.RoleStudent,
		},
		"admin@chitkara.edu.in": {
			Username: "admin",
			Password: "Admin@123",
			Name:     "Admin User",
			Role:     models.RoleAdmin,
		},
	}
}
