package dtos

type CatalogListQuery struct {
	Search string `query:"search"`
}
