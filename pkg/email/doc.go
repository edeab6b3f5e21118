// Package email abstracts transactional email delivery behind the
// EmailSender interface.
//
// Two implementations are provided: a Postmark-backed client for production
// and a filesystem sender for local development that writes each message to
// disk instead of dispatching it.
package email
