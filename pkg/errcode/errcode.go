package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Catalog errors
	CatalogReadError
	CatalogInvalidError

	// API errors
	APIRequestError
	APIStatusError
	APIDecodeError
	APIResponseError

	// Seed errors
	SeedIntegrityError
	SeedEncodeError
	SeedNotFoundError
	SeedDecodeError
	CancelledError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBDropTableError

	// Export errors
	ExportSchemaGORMConnectionError
	ExportSchemaCreateError
	ExportSQLiteOpenError
	ExportInsertError
	ExportNothingError

	// Publish errors
	StorageClientError
	StorageBucketError
	StorageUploadError

	// Hero content errors
	HeroEncodeError
	HeroCancelledError
)
