package converter

import (
	"salon-storefront/internal/domain/booking"
	"salon-storefront/internal/domain/gallery"
	"salon-storefront/internal/domain/product"
	"salon-storefront/internal/domain/review"
	"salon-storefront/internal/domain/service"
	"salon-storefront/internal/infra/docid"
	"salon-storefront/internal/pkg/clock"
)

// The *ToDocument functions leave the id unset; the store assigns it on
// insert and keeps it on replace.

func ProductToDocument(p *product.Product) ProductDocument {
	return ProductDocument{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		InStock:     p.InStock,
		Featured:    p.Featured,
		CreatedAt:   clock.Normalize(p.CreatedAt),
	}
}

func ProductFromDocument(d ProductDocument) *product.Product {
	return &product.Product{
		ID:          docid.ToWire(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Image:       d.Image,
		InStock:     d.InStock,
		Featured:    d.Featured,
		CreatedAt:   clock.Normalize(d.CreatedAt),
	}
}

func BookingToDocument(b *booking.Booking) BookingDocument {
	return BookingDocument{
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		Service:   b.Service,
		Date:      b.Date,
		Time:      b.Time,
		Message:   b.Message,
		Status:    b.Status.String(),
		CreatedAt: clock.Normalize(b.CreatedAt),
	}
}

// BookingFromDocument trusts the stored status; rows written before the
// enum was enforced are returned as they are.
func BookingFromDocument(d BookingDocument) *booking.Booking {
	return &booking.Booking{
		ID:        docid.ToWire(d.ID),
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Service:   d.Service,
		Date:      d.Date,
		Time:      d.Time,
		Message:   d.Message,
		Status:    booking.Status(d.Status),
		CreatedAt: clock.Normalize(d.CreatedAt),
	}
}

func ReviewToDocument(r *review.Review) ReviewDocument {
	return ReviewDocument{
		Name:      r.Name,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Approved:  r.Approved,
		CreatedAt: clock.Normalize(r.CreatedAt),
	}
}

func ReviewFromDocument(d ReviewDocument) *review.Review {
	return &review.Review{
		ID:        docid.ToWire(d.ID),
		Name:      d.Name,
		Rating:    d.Rating,
		Comment:   d.Comment,
		Approved:  d.Approved,
		CreatedAt: clock.Normalize(d.CreatedAt),
	}
}

func ServiceToDocument(s *service.Service) ServiceDocument {
	return ServiceDocument{
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		Image:       s.Image,
		Popular:     s.Popular,
	}
}

func ServiceFromDocument(d ServiceDocument) *service.Service {
	return &service.Service{
		ID:          docid.ToWire(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Duration:    d.Duration,
		Price:       d.Price,
		Image:       d.Image,
		Popular:     d.Popular,
	}
}

func GalleryToDocument(i *gallery.Item) GalleryDocument {
	return GalleryDocument{
		Image:     i.Image,
		Caption:   i.Caption,
		CreatedAt: clock.Normalize(i.CreatedAt),
	}
}

func GalleryFromDocument(d GalleryDocument) *gallery.Item {
	return &gallery.Item{
		ID:        docid.ToWire(d.ID),
		Image:     d.Image,
		Caption:   d.Caption,
		CreatedAt: clock.Normalize(d.CreatedAt),
	}
}
