// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration for the crowdcheck server.

Configuration comes from CLI flags with environment variable fallback.
A .env file in the working directory is loaded first (via godotenv), so
local development needs no exported variables.

# Settings

Required:

  - DATABASE_URL (-d): connection string (postgres URL or sqlite path)
  - SESSION_SECRET (-session-secret): HMAC secret for session tokens

Optional:

  - PORT (-p): server port (default 8471)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - ADMIN_EMAILS (-admin-emails): comma-separated emails that receive the
    admin flag at registration; the only way to bootstrap a first admin

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
*/
package cliparse
