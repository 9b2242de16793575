//go:build integration

package catalog

import (
	"testing"

	"github.com/GantalaAvinash/mobile-store/pkg/testsuite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type CatalogSuite struct {
	testsuite.BaseSuite

	Repo    Repository
	Service Service
	Cached  Service
}

func (s *CatalogSuite) SetupSuite() {
	s.SetupInfrastructure("../../migrations")

	s.Repo = NewRepository(s.DbPool, zap.NewNop())
	s.Service = NewService(s.Repo, zap.NewNop())
	s.Cached = NewCachedService(s.Service, s.RedisClient)
}

func (s *CatalogSuite) TearDownSuite() {
	s.TearDownInfrastructure()
}

func (s *CatalogSuite) TearDownTest() {
	s.TruncateTable("products")
	s.Require().NoError(s.RedisClient.FlushAll(s.Ctx).Err())
}

func (s *CatalogSuite) TestSeedAndList() {
	inserted, err := s.Service.Seed(s.Ctx, SampleProducts())
	s.Require().NoError(err)
	s.Equal(len(SampleProducts()), inserted)

	products, err := s.Service.List(s.Ctx)
	s.Require().NoError(err)
	s.Len(products, len(SampleProducts()))
}

func (s *CatalogSuite) TestSeed_IsIdempotent() {
	_, err := s.Service.Seed(s.Ctx, SampleProducts())
	s.Require().NoError(err)

	inserted, err := s.Service.Seed(s.Ctx, SampleProducts())
	s.Require().NoError(err)
	s.Zero(inserted)
}

func (s *CatalogSuite) TestGetByID() {
	_, err := s.Service.Seed(s.Ctx, SampleProducts())
	s.Require().NoError(err)

	product, err := s.Service.GetByID(s.Ctx, "iphone-15-pro")
	s.Require().NoError(err)
	s.Equal("iPhone 15 Pro", product.Name)
	s.NotEmpty(product.Specifications)
}

func (s *CatalogSuite) TestGetByID_Missing() {
	_, err := s.Service.GetByID(s.Ctx, "no-such-product")
	s.Require().ErrorIs(err, ErrProductNotFound)
}

func (s *CatalogSuite) TestList_SkipsMalformedRecords() {
	_, err := s.Service.Seed(s.Ctx, SampleProducts())
	s.Require().NoError(err)

	_, err = s.DbPool.Exec(s.Ctx,
		`INSERT INTO products (id, name, price) VALUES ('broken', '', 100)`)
	s.Require().NoError(err)

	products, err := s.Service.List(s.Ctx)
	s.Require().NoError(err)
	s.Len(products, len(SampleProducts()))
}

func (s *CatalogSuite) TestCachedGetByID_SurvivesRowDeletion() {
	_, err := s.Cached.Seed(s.Ctx, SampleProducts())
	s.Require().NoError(err)

	first, err := s.Cached.GetByID(s.Ctx, "iphone-15-pro")
	s.Require().NoError(err)

	_, err = s.DbPool.Exec(s.Ctx, `DELETE FROM products WHERE id = 'iphone-15-pro'`)
	s.Require().NoError(err)

	second, err := s.Cached.GetByID(s.Ctx, "iphone-15-pro")
	s.Require().NoError(err)
	s.Equal(first.Name, second.Name)
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}
