// accessctl is the CLI for the software access request service.
//
// The service exposes a REST API where employees request access to catalog
// software and managers or admins approve or reject those requests.
//
// # Architecture
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and their GORM implementation
//   - pkg/authz: Role-based authorization policy
//   - pkg/token: Session token issuing and verification
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	accessctl db migrate
//
//	# Bootstrap an admin account
//	accessctl user create admin --role Admin --password changeme
//
//	# Start the server
//	accessctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ACCESSHUB_SESSION_KEY: HMAC key for session tokens, at least 32 bytes
//   - ACCESSHUB_SESSION_TOKEN_TTL: Session token validity in minutes
//   - ACCESSHUB_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8080)
package main
