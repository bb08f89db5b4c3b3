package usecase

import (
	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

func toRepoPage(in dto.PageRequest) (dto.PageRequest, repository.Page) {
	in.DefaultPage()
	return in, repository.Page{Limit: in.Limit, Offset: in.Offset}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
