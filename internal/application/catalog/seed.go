package catalog

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/pkg/barcode"
)

type seedRow struct {
	id          int
	name        string
	category    entity.Category
	price, cost string
	stock       int
	unit        entity.UnitOfMeasure
	image       string
	description string
	status      entity.ProductStatus
	created     string
	updated     string
}

var seedRows = []seedRow{
	{1, "Aceite Esencial de Lavanda", entity.CategoryAromaticos, "25.99", "18.50", 15, entity.UnitLitro, "/products/lavanda.jpg",
		"Aceite esencial puro de lavanda francesa, ideal para relajación y aromaterapia.", entity.StatusActive, "2024-01-15", "2024-01-20"},
	{3, "Té Orgánico de Manzanilla", entity.CategoryOrganicos, "12.75", "8.50", 32, entity.UnitGramo, "/products/te-manzanilla.jpg",
		"Té orgánico de manzanilla, cultivado sin pesticidas para una experiencia pura.", entity.StatusActive, "2024-01-08", "2024-01-18"},
	{4, "Kit de Meditación Completo", entity.CategoryWellness, "89.99", "55.00", 5, entity.UnitGramo, "/products/kit-meditacion.jpg",
		"Kit completo con cojín, incienso y guía de meditación.", entity.StatusActive, "2024-01-12", "2024-01-22"},
	{6, "Incienso de Sándalo Premium", entity.CategoryAromaticos, "16.25", "9.75", 28, entity.UnitGramo, "/products/incienso-sandalo.jpg",
		"Incienso premium de sándalo genuino de la India, para rituales y meditación.", entity.StatusActive, "2024-01-03", "2024-01-13"},
	{7, "Miel de Manuka Orgánica", entity.CategoryOrganicos, "32.50", "22.00", 0, entity.UnitLitro, "/products/miel-manuka.jpg",
		"Miel de Manuka pura de Nueva Zelanda con propiedades medicinales únicas.", entity.StatusOutOfStock, "2024-01-01", "2024-01-30"},
	{8, "Velas Aromáticas de Soja", entity.CategoryAromaticos, "22.99", "14.50", 18, entity.UnitGramo, "/products/velas-soja.jpg",
		"Set de 3 velas aromáticas de cera de soja con esencias naturales.", entity.StatusActive, "2023-12-28", "2024-01-10"},
	{10, "Sesión de Reiki Virtual", entity.CategoryWellness, "65.00", "35.00", 0, entity.UnitGramo, "/products/reiki-session.jpg",
		"Sesión personalizada de Reiki a distancia con maestro certificado.", entity.StatusInactive, "2023-12-20", "2024-01-28"},
	{11, "Aceite de Coco Virgen Extra", entity.CategoryOrganicos, "15.50", "9.25", 24, entity.UnitLitro, "/products/aceite-coco.jpg",
		"Aceite de coco virgen extra prensado en frío, multiuso para belleza y cocina.", entity.StatusActive, "2023-12-18", "2024-01-08"},
	{12, "Difusor Ultrasónico Premium", entity.CategoryAromaticos, "52.99", "32.00", 7, entity.UnitGramo, "/products/difusor.jpg",
		"Difusor ultrasónico con luces LED y temporizador para aceites esenciales.", entity.StatusActive, "2023-12-15", "2024-01-02"},
	{14, "Cúrcuma en Polvo Orgánica", entity.CategoryOrganicos, "9.99", "6.50", 45, entity.UnitGramo, "/products/curcuma.jpg",
		"Cúrcuma orgánica en polvo, rica en curcumina con propiedades antiinflamatorias.", entity.StatusActive, "2023-12-10", "2023-12-28"},
	{15, "Curso Online de Tarot", entity.CategoryWellness, "125.00", "75.00", 999, entity.UnitGramo, "/products/curso-tarot.jpg",
		"Curso completo de tarot para principiantes con certificación incluida.", entity.StatusActive, "2023-12-05", "2023-12-25"},
}

// SeedProducts catálogo inicial de MÍSTICA. Los códigos de barras se derivan del id en now.
func SeedProducts(now time.Time) []entity.Product {
	out := make([]entity.Product, 0, len(seedRows))
	for _, r := range seedRows {
		out = append(out, entity.Product{
			ID:            strconv.Itoa(r.id),
			Name:          r.name,
			Barcode:       barcode.Generate(r.id, now),
			Category:      r.category,
			Price:         decimal.RequireFromString(r.price),
			CostPrice:     decimal.RequireFromString(r.cost),
			Stock:         r.stock,
			UnitOfMeasure: r.unit,
			Image:         r.image,
			Description:   r.description,
			Status:        r.status,
			CreatedAt:     mustDate(r.created),
			UpdatedAt:     mustDate(r.updated),
		})
	}
	return out
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
