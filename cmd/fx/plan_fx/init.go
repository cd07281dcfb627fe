package plan_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Options(
	fx.Provide(providePlanRepo, providePlanService, providePlanController),
	fx.Invoke(seedDefaultPlans),
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}

// seedDefaultPlans fills an empty plans table on boot so a fresh deployment
// has something to sell.
func seedDefaultPlans(lc fx.Lifecycle, planService services.PlanServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := planService.SeedDefaults(ctx)
			if err != nil {
				log.Printf("Failed to seed default plans: %v", err)
				return nil
			}
			if len(seeded) > 0 {
				log.Printf("Seeded %d default plans", len(seeded))
			}
			return nil
		},
	})
}
