package catalog

import "github.com/nikolayk812/storefront/internal/domain"

// State is one of Loading, Loaded or Failed.
type State interface {
	isState()
}

type Loading struct{}

type Loaded struct {
	Products []domain.Product
}

type Failed struct {
	Message string
	Err     error
}

func (Loading) isState() {}
func (Loaded) isState()  {}
func (Failed) isState()  {}
