// Package ttkia is a Go SDK for the TTKIA assistant API: workspace and
// conversation management, assistant queries with retrieval sources, file
// attachments, and the style/prompt/source catalogs.
//
// Construct a client with explicit options:
//
//	client, err := ttkia.New(
//	    ttkia.WithBaseURL("https://ttkia.example.com"),
//	    ttkia.WithAppToken(os.Getenv("TTKIA_APP_TOKEN")),
//	)
//
// or from environment configuration:
//
//	cfg, err := config.Load()
//	client, err := ttkia.FromConfig(cfg)
//
// Then create a workspace and query inside it:
//
//	ws, err := client.NewWorkspace(ctx)
//	resp, err := ws.Query(ctx, "¿Qué es SD-WAN?", ttkia.TeacherMode(true))
package ttkia
