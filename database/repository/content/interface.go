package contentRepo

import (
	"context"

	"jojocolaresbeauty/models"
)

// ContentRepository persists landing-page content: portfolio items and testimonials.
type ContentRepository interface {
	CreatePortfolioItem(ctx context.Context, item models.PortfolioItem) (string, error)
	ListPortfolio(ctx context.Context) ([]models.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id string) error

	CreateTestimonial(ctx context.Context, tm models.Testimonial) (string, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	// Landing-page customization is a single document; Get defaults when the
	// admin has never saved it.
	GetLandingPage(ctx context.Context) (models.LandingPage, error)
	UpdateLandingPage(ctx context.Context, page models.LandingPage) error
}
