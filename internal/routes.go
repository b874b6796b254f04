package internal

import (
	"net/http"

	"ftd/internal/controllers"
	"ftd/internal/providers"
)

func InitRoutes(trackingController *controllers.TrackingController, workoutController *controllers.WorkoutController, rewardController *controllers.RewardController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/summary/today", http.HandlerFunc(trackingController.GetToday))
	routers.Get("/summary/lifetime", http.HandlerFunc(trackingController.GetLifetime))
	routers.Post("/steps", http.HandlerFunc(trackingController.AddSteps))
	routers.Post("/reset", http.HandlerFunc(trackingController.ResetToday))

	routers.Get("/tracking", http.HandlerFunc(trackingController.GetTracking))
	routers.Post("/tracking/start", http.HandlerFunc(trackingController.StartTracking))
	routers.Post("/tracking/stop", http.HandlerFunc(trackingController.StopTracking))

	routers.Get("/health/metrics", http.HandlerFunc(trackingController.GetHealthMetrics))
	routers.Put("/health/metrics", http.HandlerFunc(trackingController.UpdateHealthMetrics))

	routers.Get("/workouts", http.HandlerFunc(workoutController.List))
	routers.Post("/workouts", http.HandlerFunc(workoutController.Add))
	routers.Delete("/workouts", http.HandlerFunc(workoutController.Delete))

	routers.Get("/rewards", http.HandlerFunc(rewardController.List))
	routers.Post("/rewards/claim", http.HandlerFunc(rewardController.Claim))
	return routers
}
