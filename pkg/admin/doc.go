// Package admin provides typed service wrappers over the admin panel API:
// users, images, and authentication. Each service is a thin layer over
// pkg/apiclient that owns the endpoint paths and the wire types; it adds no
// semantics of its own, and errors pass through untranslated.
//
//	client, _ := store.Connect("http://localhost:8080/api/v1")
//
//	users := admin.NewUserService(client)
//	images := admin.NewImageService(client)
//
//	list, err := users.List(ctx)
//	page, err := images.List(ctx, 2, 20)
package admin
