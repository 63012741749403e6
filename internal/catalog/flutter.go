package catalog

// flutterCatalog is the shipped skeleton: a clean-architecture Flutter app
// layout with core/data/domain/presentation layers plus routing and
// dependency-injection config. Every file is an empty placeholder; the
// widgets subdirectories are intentionally empty.
var flutterCatalog = &Catalog{
	Name:        "flutter",
	Description: "Clean-architecture Flutter app skeleton",
	Nodes: []Node{
		Dir("lib",
			Dir("core",
				Dir("constants", Files(
					"app_constants.dart",
					"app_strings.dart",
					"app_theme.dart",
				)...),
				Dir("errors", Files(
					"exceptions.dart",
					"failures.dart",
				)...),
				Dir("network", Files(
					"network_info.dart",
					"api_client.dart",
				)...),
				Dir("utils", Files(
					"date_formatter.dart",
					"validators.dart",
					"analytics_helper.dart",
				)...),
				Dir("widgets",
					Dir("buttons"),
					Dir("cards"),
					Dir("dialogs"),
					Dir("loaders"),
				),
			),
			Dir("data",
				Dir("datasources",
					Dir("local", Files(
						"app_database.dart",
						"workout_local_datasource.dart",
						"user_local_datasource.dart",
					)...),
					Dir("remote", Files(
						"workout_remote_datasource.dart",
						"user_remote_datasource.dart",
					)...),
				),
				Dir("models", Files(
					"exercise_model.dart",
					"workout_model.dart",
					"workout_log_model.dart",
					"user_model.dart",
					"personal_record_model.dart",
				)...),
				Dir("repositories", Files(
					"workout_repository_impl.dart",
					"exercise_repository_impl.dart",
					"user_repository_impl.dart",
				)...),
			),
			Dir("domain",
				Dir("entities", Files(
					"exercise.dart",
					"workout.dart",
					"workout_log.dart",
					"user.dart",
					"personal_record.dart",
				)...),
				Dir("repositories", Files(
					"workout_repository.dart",
					"exercise_repository.dart",
					"user_repository.dart",
				)...),
				Dir("usecases",
					Dir("workout", Files(
						"get_workout_history.dart",
						"log_workout.dart",
						"get_personal_records.dart",
					)...),
					Dir("user", Files(
						"get_user.dart",
						"update_user.dart",
					)...),
				),
			),
			Dir("presentation",
				Dir("bloc",
					Dir("workout", Files(
						"workout_bloc.dart",
						"workout_event.dart",
						"workout_state.dart",
					)...),
					Dir("exercise", Files(
						"exercise_bloc.dart",
						"exercise_event.dart",
						"exercise_state.dart",
					)...),
					Dir("timer", Files(
						"timer_bloc.dart",
						"timer_event.dart",
						"timer_state.dart",
					)...),
				),
				Dir("pages",
					Dir("home",
						File("home_page.dart"),
						Dir("widgets"),
					),
					Dir("workout",
						File("workout_list_page.dart"),
						File("workout_detail_page.dart"),
						File("workout_in_progress_page.dart"),
						Dir("widgets"),
					),
					Dir("stats",
						File("stats_dashboard_page.dart"),
						Dir("widgets"),
					),
					Dir("history",
						File("workout_history_page.dart"),
						Dir("widgets"),
					),
					Dir("profile",
						File("profile_page.dart"),
						Dir("widgets"),
					),
				),
				Dir("widgets", Files(
					"exercise_card.dart",
					"workout_timer.dart",
					"set_tracker.dart",
					"progress_chart.dart",
				)...),
			),
			Dir("config",
				Dir("routes", Files(
					"app_router.dart",
					"route_names.dart",
				)...),
				Dir("injection", Files(
					"dependency_injection.dart",
				)...),
			),
			File("app.dart"),
			File("main.dart"),
		),
	},
}
