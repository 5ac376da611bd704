package queries

import (
	"context"
	"strings"

	"lexicon/contexts/lexicon/catalog-service/domain/entities"
	"lexicon/contexts/lexicon/catalog-service/ports"
)

type GetWordUseCase struct {
	Words ports.WordRepository
}

func (u GetWordUseCase) Execute(ctx context.Context, wordID string) (entities.Word, error) {
	return u.Words.GetWord(ctx, strings.TrimSpace(wordID))
}
