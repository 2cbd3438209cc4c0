package porta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PortaTestSuite struct {
	suite.Suite
	Ctx context.Context
}

func (s *PortaTestSuite) SetupTest() {
	s.Ctx = context.Background()
}

func TestPorta(t *testing.T) {
	suite.Run(t, new(PortaTestSuite))
}
