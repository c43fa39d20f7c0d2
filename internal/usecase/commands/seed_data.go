package commands

import (
	"time"

	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/domain/service"
	"salon-storefront/internal/pkg/ptr"
)

// placeholderImage is a 1x1 PNG; the admin panel replaces it with real
// photos.
const placeholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

var demoProducts = []product.Attributes{
	{
		Name:        "Lakme Perfecting Liquid Foundation",
		Description: "Flawless finish foundation with SPF 25. Lightweight and long-lasting.",
		Price:       699,
		Category:    product.CategoryMakeup,
		Image:       placeholderImage,
		InStock:     ptr.Of(true),
		Featured:    ptr.Of(true),
	},
	{
		Name:        "Maybelline Fit Me Foundation",
		Description: "Lightweight foundation that matches your skin tone perfectly.",
		Price:       499,
		Category:    product.CategoryMakeup,
		Image:       placeholderImage,
		InStock:     ptr.Of(true),
		Featured:    ptr.Of(true),
	},
	{
		Name:        "Himalaya Nourishing Face Cream",
		Description: "Intensive nourishment for soft, supple skin. Enriched with aloe vera.",
		Price:       175,
		Category:    product.CategorySkincare,
		Image:       placeholderImage,
		InStock:     ptr.Of(true),
		Featured:    ptr.Of(true),
	},
	{
		Name:        "Engage Perfume Gift Set",
		Description: "Premium fragrance gift set perfect for any occasion.",
		Price:       1299,
		Category:    product.CategoryGiftItems,
		Image:       placeholderImage,
		InStock:     ptr.Of(true),
		Featured:    ptr.Of(true),
	},
}

var demoServices = []service.Attributes{
	{
		Name:        "Bridal Makeup",
		Description: "Complete bridal makeup package with hair styling and draping.",
		Duration:    "3 hours",
		Price:       8999,
		Image:       placeholderImage,
		Popular:     ptr.Of(true),
	},
	{
		Name:        "Party Makeup",
		Description: "Glamorous party makeup to make you stand out.",
		Duration:    "1.5 hours",
		Price:       2499,
		Image:       placeholderImage,
		Popular:     ptr.Of(true),
	},
	{
		Name:        "Facial Treatment",
		Description: "Deep cleansing and nourishing facial treatment.",
		Duration:    "1 hour",
		Price:       999,
		Image:       placeholderImage,
		Popular:     ptr.Of(false),
	},
}

var demoReviews = []review.Attributes{
	{
		Name:     "Priya Sharma",
		Rating:   5,
		Comment:  "Amazing service! The bridal makeup was absolutely stunning. Highly recommend!",
		Approved: ptr.Of(true),
	},
	{
		Name:     "Anjali Verma",
		Rating:   5,
		Comment:  "Great collection of products and very helpful staff. Love shopping here!",
		Approved: ptr.Of(true),
	},
	{
		Name:     "Sneha Patel",
		Rating:   4,
		Comment:  "Good quality products at reasonable prices. Will visit again.",
		Approved: ptr.Of(true),
	},
}

func demoCatalogue(now time.Time) ([]*product.Product, []*service.Service, []*review.Review, error) {
	ps := make([]*product.Product, 0, len(demoProducts))
	for _, a := range demoProducts {
		p, err := product.New(a, now)
		if err != nil {
			return nil, nil, nil, err
		}
		ps = append(ps, p)
	}

	ss := make([]*service.Service, 0, len(demoServices))
	for _, a := range demoServices {
		s, err := service.New(a)
		if err != nil {
			return nil, nil, nil, err
		}
		ss = append(ss, s)
	}

	rs := make([]*review.Review, 0, len(demoReviews))
	for _, a := range demoReviews {
		r, err := review.New(a, now)
		if err != nil {
			return nil, nil, nil, err
		}
		rs = append(rs, r)
	}
	return ps, ss, rs, nil
}
