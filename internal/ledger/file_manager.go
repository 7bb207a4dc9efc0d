package ledger

import (
	"os"

	json "github.com/goccy/go-json"

	"fitledger/internal/ledger/interfaces"
	"fitledger/internal/models"
	"fitledger/internal/providers"
	"fitledger/internal/services"
)

// FileManager persists the whole ledger as one zstd-compressed JSON
// snapshot, written atomically via tmp+rename.
type FileManager struct {
	service    services.RewardServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.RewardServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	snap := f.service.GetSnapshot()

	jsonData, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Current format: versioned snapshot
	var snap models.Snapshot
	if err := json.Unmarshal(decompressedData, &snap); err == nil && snap.Version >= models.SnapshotVersion && snap.Accounts != nil {
		f.service.PutSnapshot(&snap)
		return nil
	}

	// Prior schema: flat account map, no rate state, no admin state.
	// Load what is there, then run the repair pass over every account.
	f.logger.Warnf(providers.TypeApp, "Inconsistent DB found, try to migrate from old data format")
	var oldAccounts map[string]*models.Account
	if err := json.Unmarshal(decompressedData, &oldAccounts); err != nil || oldAccounts == nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}

	f.service.PutSnapshot(&models.Snapshot{
		Version:  models.SnapshotVersion,
		Accounts: oldAccounts,
	})

	ids := make([]string, 0, len(oldAccounts))
	for id := range oldAccounts {
		ids = append(ids, id)
	}
	report := f.service.BulkMigrateUserData(ids)
	f.logger.Warnf(providers.TypeApp, "Migration from v1 format: %d repaired, %d failed", report.Migrated, report.Failed)

	return nil
}
