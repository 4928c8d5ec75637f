package services

import (
	"fmt"

	"github.com/dsml-pipelines/msgprep/internal/csvio"
	"github.com/dsml-pipelines/msgprep/internal/dataset"
	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

// LoadData reads the messages and categories CSV files and inner-joins them
// on the shared "id" column. Rows without a match on either side are
// excluded; matching rows keep the messages file's order.
func LoadData(messagesPath, categoriesPath string) (*dataset.Table, error) {
	messages, err := csvio.ReadTable(messagesPath)
	if err != nil {
		return nil, fmt.Errorf("load messages dataset: %w", err)
	}

	categories, err := csvio.ReadTable(categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("load categories dataset: %w", err)
	}

	if categories.ColumnIndex(msgprep.CategoriesColumn) == -1 {
		return nil, fmt.Errorf("categories dataset %s has no %q column: %w",
			categoriesPath, msgprep.CategoriesColumn, msgprep.ErrSchemaMismatch)
	}

	joined, err := dataset.InnerJoin(messages, categories, msgprep.JoinKeyColumn)
	if err != nil {
		return nil, fmt.Errorf("join datasets on %q: %w: %w",
			msgprep.JoinKeyColumn, msgprep.ErrSchemaMismatch, err)
	}

	return joined, nil
}
