package importer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/vimport/models"
)

// fakeDatabase is an in-memory Database for tests. Records handed out by
// CreateRecord only join the store on their first Commit.
type fakeDatabase struct {
	records    []*models.ContactRecord
	failQuery  bool
	failCommit bool
	commits    int
}

func (f *fakeDatabase) AllRecords() ([]*models.ContactRecord, error) {
	if f.failQuery {
		return nil, fmt.Errorf("query refused")
	}
	return append([]*models.ContactRecord(nil), f.records...), nil
}

func (f *fakeDatabase) CreateRecord() *models.ContactRecord {
	return &models.ContactRecord{ID: uuid.New()}
}

func (f *fakeDatabase) Commit(rec *models.ContactRecord, isUpdate bool) error {
	if f.failCommit {
		return fmt.Errorf("commit refused")
	}
	f.commits++
	if !isUpdate {
		f.records = append(f.records, rec)
	}
	return nil
}
