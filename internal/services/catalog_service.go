package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yaaasyaaa/platina-granat/internal/domain"
	"github.com/yaaasyaaa/platina-granat/internal/repos"
	"github.com/yaaasyaaa/platina-granat/internal/validate"
)

var (
	ErrImageType = errors.New("only image uploads are accepted")
	ErrImageExt  = errors.New("unsupported image format")
)

type CatalogService struct {
	Prods  *repos.ProductRepo
	ImgDir string
}

func NewCatalogService(prods *repos.ProductRepo, imgDir string) *CatalogService {
	return &CatalogService{Prods: prods, ImgDir: imgDir}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	ps, err := s.Prods.List()
	if err != nil {
		return nil, err
	}
	for i := range ps {
		ps[i].ImageURL = s.imageURL(ps[i])
	}
	return ps, nil
}

// imageURL resolves the serving URL for a product: the stored upload if
// it still exists on disk, otherwise a per-id placeholder.
func (s *CatalogService) imageURL(p domain.Product) string {
	if p.ImagePath != "" {
		if _, err := os.Stat(p.ImagePath); err == nil {
			return "/static/imgs/" + filepath.Base(p.ImagePath)
		}
	}
	switch p.ID {
	case 1:
		return "/static/imgs/mini.png"
	case 2:
		return "/static/imgs/standart.png"
	case 3:
		return "/static/imgs/max.png"
	}
	return "/static/imgs/default.png"
}

// CreateProduct validates and stores the uploaded image under a unique
// filename, then persists the product row.
func (s *CatalogService) CreateProduct(name string, price int64, description string, image *multipart.FileHeader) (domain.Product, error) {
	if !validate.ImageContentType(image.Header.Get("Content-Type")) {
		return domain.Product{}, ErrImageType
	}
	ext, ok := validate.ImageExt(image.Filename)
	if !ok {
		return domain.Product{}, ErrImageExt
	}

	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	path := filepath.Join(s.ImgDir, filename)
	if err := s.saveUpload(image, path); err != nil {
		return domain.Product{}, fmt.Errorf("store image: %w", err)
	}

	id, err := s.Prods.Create(name, price, description, path)
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
		ImagePath:   path,
		ImageURL:    "/static/imgs/" + filename,
	}
	return p, nil
}

func (s *CatalogService) saveUpload(image *multipart.FileHeader, path string) error {
	if err := os.MkdirAll(s.ImgDir, 0o755); err != nil {
		return err
	}
	src, err := image.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
