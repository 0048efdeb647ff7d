package repository

import (
	"salon/internal/domains/salon/model"

	"github.com/lib/pq"
)

func stringPtr(s string) *string {
	return &s
}

func seedServices() []model.Service {
	return []model.Service{
		{
			Title:       "Signature Haircut & Style",
			Description: "A precision cut tailored to your face shape and lifestyle, finished with a luxury blowout.",
			Category:    "Hair",
			Price:       8500,
			Duration:    60,
			Image:       "https://images.unsplash.com/photo-1562322140-8baeececf3df?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Title:       "Balayage & Color Correction",
			Description: "Hand-painted highlights for a natural, sun-kissed look or complete color transformation.",
			Category:    "Hair",
			Price:       25000,
			Duration:    180,
			Image:       "https://images.unsplash.com/photo-1560869713-7d0a29430803?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Title:       "Luxury Spa Manicure",
			Description: "Exfoliation, mask, massage, and polish application for rejuvenated hands.",
			Category:    "Nails",
			Price:       4500,
			Duration:    45,
			Image:       "https://images.unsplash.com/photo-1632345031435-8727f6897d53?auto=format&fit=crop&q=80",
			IsFeatured:  false,
		},
		{
			Title:       "Deep Tissue Massage",
			Description: "Therapeutic massage focusing on realignment of deeper layers of muscles and connective tissue.",
			Category:    "Spa",
			Price:       12000,
			Duration:    60,
			Image:       "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Title:       "Rejuvenating Facial",
			Description: "Customized facial treatment to cleanse, exfoliate, and hydrate your skin.",
			Category:    "Skin",
			Price:       9500,
			Duration:    75,
			Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?auto=format&fit=crop&q=80",
			IsFeatured:  false,
		},
		{
			Title:       "Keratin Treatment",
			Description: "Smoothing treatment to eliminate frizz and add shine for up to 4 months.",
			Category:    "Hair",
			Price:       30000,
			Duration:    150,
			Image:       "https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?auto=format&fit=crop&q=80",
			IsFeatured:  false,
		},
	}
}

func seedStylists() []model.Stylist {
	return []model.Stylist{
		{
			Name:        "Elena Rossi",
			Role:        "Creative Director",
			Bio:         "With over 15 years of experience in Milan and Paris, Elena brings international flair to every cut.",
			Image:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80",
			Specialties: pq.StringArray{"Precision Cutting", "Avant-Garde Styling"},
		},
		{
			Name:        "David Chen",
			Role:        "Master Colorist",
			Bio:         "David specializes in creating multidimensional color that enhances natural beauty.",
			Image:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80",
			Specialties: pq.StringArray{"Balayage", "Color Correction", "Blondes"},
		},
		{
			Name:        "Sarah Jenkins",
			Role:        "Senior Stylist",
			Bio:         "Sarah is known for her ability to work with all textures and create effortless, wearable styles.",
			Image:       "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&q=80",
			Specialties: pq.StringArray{"Curly Hair", "Bridal Styling"},
		},
	}
}

func seedTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			Name:    "Jessica M.",
			Role:    stringPtr("Loyal Client"),
			Content: "The best salon experience I've ever had. Elena understood exactly what I wanted and delivered beyond expectations.",
			Rating:  5,
			Avatar:  stringPtr("https://randomuser.me/api/portraits/women/44.jpg"),
		},
		{
			Name:    "Michael T.",
			Role:    stringPtr("New Client"),
			Content: "Incredible atmosphere and professional service. The hot towel shave was perfection.",
			Rating:  5,
			Avatar:  stringPtr("https://randomuser.me/api/portraits/men/32.jpg"),
		},
		{
			Name:    "Sophia L.",
			Role:    stringPtr("VIP Member"),
			Content: "I've been coming here for years. The consistency and quality are unmatched in the city.",
			Rating:  5,
			Avatar:  stringPtr("https://randomuser.me/api/portraits/women/68.jpg"),
		},
	}
}

func seedOffers() []model.Offer {
	return []model.Offer{
		{
			Title:       "New Client Special",
			Description: "Enjoy a complimentary treatment with your first haircut.",
			Code:        stringPtr("WELCOME20"),
			Discount:    "Complimentary Treatment",
			Expiry:      stringPtr("Ongoing"),
		},
		{
			Title:       "Summer Glow Package",
			Description: "Full balayage, gloss, and style for a refreshed look.",
			Code:        stringPtr("SUMMERGLOW"),
			Discount:    "15% OFF",
			Expiry:      stringPtr("August 31, 2025"),
		},
	}
}
