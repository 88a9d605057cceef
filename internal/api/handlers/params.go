package handlers

import (
	"net/http"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
)

// pageParams reads page and page_size, capping the size at max.
func pageParams(r *http.Request, defSize, maxSize int) (int, int, error) {
	page, err := utils.QueryInt(r, "page", 1)
	if err != nil {
		return 0, 0, errors.BadRequestError("Invalid pagination").WithDetail(err.Error())
	}

	size, err := utils.QueryInt(r, "page_size", defSize)
	if err != nil {
		return 0, 0, errors.BadRequestError("Invalid pagination").WithDetail(err.Error())
	}

	if size > maxSize {
		size = maxSize
	}

	return page, size, nil
}

func pathValue(r *http.Request, key string) (string, error) {
	value := r.PathValue(key)
	if value == "" {
		return "", errors.BadRequestError(key + " is required")
	}

	return value, nil
}
