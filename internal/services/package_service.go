package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alhijaztravel/safarbay/internal/models"
)

type PackageService struct {
	packageRepo models.PackageRepo
}

func NewPackageService(packageRepo models.PackageRepo) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
	}
}

func (ps *PackageService) GetPackageByID(ctx context.Context, id string) (*models.TravelPackage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("package ID cannot be empty")
	}
	return ps.packageRepo.GetPackageByID(ctx, id)
}

func (ps *PackageService) ListPackages(ctx context.Context) ([]*models.TravelPackage, error) {
	return ps.packageRepo.ListPackages(ctx)
}
