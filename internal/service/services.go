package service

import (
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/store"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/validators"
)

// ClientServices groups all application services into a single value that
// can be passed to the UI layer.
type ClientServices struct {
	AuthService AuthService
}

// NewClientServices wires the service layer over the storage layer.
func NewClientServices(storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewAuthService(storages, validators.NewCredentialsValidator(), logger),
	}
}
