package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		posts := api.Group("/posts")
		{
			posts.Get("/", listPosts)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Delete("/:postId", deletePost)
			posts.Post("/:postId/like", likePost)
		}

		personas := api.Group("/personas")
		{
			personas.Get("/", listPersonas)
			personas.Post("/", createPersona)
			personas.Put("/:name", updatePersona)
			personas.Delete("/:name", deletePersona)
		}

		api.Get("/system_prompt", getSystemPrompt)
		api.Post("/system_prompt", updateSystemPrompt)

		api.Get("/token_usage", listTokenUsage)
		api.Post("/token_usage", recordTokenUsage)

		api.Post("/run_bot", runBot)
	}
}
