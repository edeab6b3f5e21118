// Package account wires the authentication core to its production edges:
// MongoDB persistence, transactional email notifications, and the JSON API
// mounted by the storefront server.
package account
