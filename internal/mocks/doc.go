// Package mocks provides shared test doubles for the store contracts and the
// JWT service. Store mocks are testify mocks; configure them with On/Return
// and finish with AssertExpectations.
//
//	tasks := new(mocks.TaskStore)
//	tasks.On("GetByID", mock.Anything, id).Return(task, nil)
package mocks
