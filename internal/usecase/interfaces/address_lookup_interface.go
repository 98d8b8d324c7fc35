package interfaces

import (
	"context"
	"errors"
)

// ErrCEPNotFound is returned when the postal service knows nothing about a CEP.
var ErrCEPNotFound = errors.New("cep not found")

// Address is the street data resolved from a postal code, used to prefill the
// client address on the intake form.
type Address struct {
	Street       string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement,omitempty"`
}

// IAddressLookup abstracts the external postal-code service (ViaCEP).

type IAddressLookup interface {
	Lookup(ctx context.Context, cep string) (Address, error)
}
