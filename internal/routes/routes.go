package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/auth"
	"github.com/jahangir2k04/fitflex-client/internal/config"
	"github.com/jahangir2k04/fitflex-client/internal/handlers"
	"github.com/jahangir2k04/fitflex-client/internal/middleware"
	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/payments"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
	"github.com/jahangir2k04/fitflex-client/internal/utils"
)

func SetupRouter(client *mongo.Client, cfg config.Config, log *zap.SugaredLogger) *mux.Router {
	db := client.Database(cfg.DatabaseName)

	users := repository.NewUsers(db)
	classes := repository.NewClasses(db)
	selections := repository.NewSelections(db)
	paymentStore := repository.NewPayments(db)

	tokens := auth.NewService(cfg.AccessSecret, cfg.AccessTokenTTL)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, log)

	workflow := payments.NewWorkflow(paymentStore, selections, classes, users, log)
	workflow.OnCompleted(mailer.SendReceipt)

	userHandler := handlers.NewUserHandler(users, tokens, log)
	classHandler := handlers.NewClassHandler(classes, log)
	selectionHandler := handlers.NewSelectionHandler(selections, log)
	paymentHandler := handlers.NewPaymentHandler(workflow, payments.NewStripeClient(cfg.StripeSecretKey), paymentStore, log)

	authed := middleware.RequireAuth(tokens)
	admin := middleware.RequireRole(users, models.RoleAdmin)
	instructor := middleware.RequireRole(users, models.RoleInstructor)
	student := middleware.RequireRole(users, models.RoleStudent)

	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("FitFlex is running"))
	}).Methods("GET")

	router.HandleFunc("/jwt", userHandler.IssueToken).Methods("POST")

	// users
	router.Handle("/users", authed(admin(http.HandlerFunc(userHandler.GetUsers)))).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.Handle("/users/admin/{id}", authed(admin(http.HandlerFunc(userHandler.UpdateRole)))).Methods("PATCH")
	router.Handle("/users/admin/{email}", authed(http.HandlerFunc(userHandler.CheckAdmin))).Methods("GET")
	router.Handle("/users/instructor/{email}", authed(http.HandlerFunc(userHandler.CheckInstructor))).Methods("GET")
	router.HandleFunc("/all-instructor", userHandler.GetInstructors).Methods("GET")

	// classes
	router.HandleFunc("/classes", classHandler.GetClasses).Methods("GET")
	router.Handle("/classes", authed(instructor(http.HandlerFunc(classHandler.CreateClass)))).Methods("POST")
	router.Handle("/classes/status/{id}", authed(admin(http.HandlerFunc(classHandler.UpdateStatus)))).Methods("PATCH")
	router.Handle("/classes/feedback/{id}", authed(admin(http.HandlerFunc(classHandler.UpdateFeedback)))).Methods("PATCH")
	router.Handle("/my-class", authed(instructor(http.HandlerFunc(classHandler.MyClasses)))).Methods("GET")

	// selections
	router.Handle("/selected-class", authed(student(http.HandlerFunc(selectionHandler.GetSelections)))).Methods("GET")
	router.Handle("/selected-class", authed(student(http.HandlerFunc(selectionHandler.CreateSelection)))).Methods("POST")
	router.Handle("/delete-class/{id}", authed(student(http.HandlerFunc(selectionHandler.DeleteSelection)))).Methods("DELETE")
	router.Handle("/enrolled-class", authed(student(http.HandlerFunc(paymentHandler.EnrolledClasses)))).Methods("GET")

	// payments
	router.Handle("/create-payment-intent", authed(student(http.HandlerFunc(paymentHandler.CreateIntent)))).Methods("POST")
	router.Handle("/payments", authed(student(http.HandlerFunc(paymentHandler.CompletePayment)))).Methods("POST")

	return router
}
