package models

import "time"

// PortfolioItem is one gallery entry shown on the landing page.
type PortfolioItem struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"`
	ImageURL  string    `bson:"image_url" json:"imageUrl"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Testimonial is a client review shown on the landing page.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// LandingPage is the admin-customizable landing page content, stored as a
// single document and read by the public site at render time.
type LandingPage struct {
	Hero     LandingHero     `bson:"hero" json:"hero"`
	About    LandingAbout    `bson:"about" json:"about"`
	Contact  LandingContact  `bson:"contact" json:"contact"`
	Branding LandingBranding `bson:"branding" json:"branding"`
}

type LandingHero struct {
	Title           string `bson:"title" json:"title"`
	Subtitle        string `bson:"subtitle" json:"subtitle"`
	BackgroundImage string `bson:"background_image" json:"backgroundImage"`
}

type LandingAbout struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}

type LandingContact struct {
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	Email     string `bson:"email" json:"email"`
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
}

type LandingBranding struct {
	BusinessName string `bson:"business_name" json:"businessName"`
	Tagline      string `bson:"tagline" json:"tagline"`
	CNPJ         string `bson:"cnpj" json:"cnpj"`
}

// DefaultLandingPage returns the content shown before the admin customizes
// anything.
func DefaultLandingPage() LandingPage {
	return LandingPage{
		Hero: LandingHero{
			Title:           "Realce sua Beleza Natural",
			Subtitle:        "Maquiagem profissional, design de sobrancelhas e muito mais",
			BackgroundImage: "/images/hero-bg.png",
		},
		About: LandingAbout{
			Title: "JoJo Colares",
			Description: "Acredito que a beleza é uma forma de arte e expressão pessoal. " +
				"Com anos de dedicação ao universo da estética, minha missão vai além de aplicar " +
				"maquiagem ou modelar fios; é sobre revelar a confiança que já existe em você.",
			Image: "/images/portfolio-2.png",
		},
		Contact: LandingContact{
			Address:   "Rua da Beleza, 123 - Jardins",
			City:      "São Paulo - SP",
			Email:     "contato@jojocolares.com.br",
			Instagram: "https://instagram.com/jojocolares",
			Facebook:  "https://facebook.com/jojocolares",
		},
		Branding: LandingBranding{
			BusinessName: "JoJo Colares",
			Tagline:      "Beleza e Estilo",
			CNPJ:         "00.000.000/0001-00",
		},
	}
}
