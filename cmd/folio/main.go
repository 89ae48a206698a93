// cmd/folio/main.go
//
// Folio – single binary for serving the site and operating its database.
//
// Subcommands
// -----------
//
//	folio serve    – run the HTTP server (public site + admin API)
//	folio migrate  – apply pending SQL migrations
//	folio status   – list pending migrations without applying
//	folio seed     – insert an admin user
//
// Boot sequence for every subcommand: load conf/global.yaml with env
// overlays, start the rotating logger, resolve any vault: references,
// then open MySQL with the password substituted into the DSN template.
package main

func main() {
	Execute()
}
