package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ProofUploadDir is the directory delivery proof images are written to.
	// Its contents are served statically under /uploads/delivery-proofs/.
	ProofUploadDir string

	// JWTSecret verifies deliverer bearer tokens. AllowBodyDelivererID
	// additionally accepts a delivererId field in request bodies, for
	// clients that predate token auth.
	JWTSecret            string
	AllowBodyDelivererID bool

	// StrictOwnership reports ownership failures as 403 instead of 404.
	StrictOwnership bool

	ProofCleanupSchedule    string
	ProofCleanupGracePeriod time.Duration
	StaleOrderSchedule      string
	StaleOrderMaxAge        time.Duration
}
